// Package launcher wires configuration, backends and the HTTP surface into
// a runnable ragunod process.
package launcher

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/raguno/raguno"
	"github.com/raguno/raguno/bedrock"
	"github.com/raguno/raguno/kit/cli"
	"github.com/raguno/raguno/kit/signals"
	"github.com/raguno/raguno/logger"
	"github.com/raguno/raguno/opensearch"
	"github.com/raguno/raguno/s3"
	"github.com/raguno/raguno/tenant"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const shutdownTimeout = 10 * time.Second

// Launcher is the ragunod process: it holds the parsed options and the
// running HTTP server.
type Launcher struct {
	logLevel        string
	httpBindAddress string

	region             string
	bucketName         string
	bucketARN          string
	collectionARN      string
	collectionEndpoint string
	roleARN            string
	embeddingModelARN  string

	log        *zap.Logger
	httpServer *http.Server
}

// NewLauncher returns a launcher with nothing configured.
func NewLauncher() *Launcher {
	return &Launcher{}
}

// NewCommand builds the ragunod cobra command. Every flag is also bound to
// a RAGUNOD_ environment variable.
func NewCommand() *cobra.Command {
	l := NewLauncher()
	prog := &cli.Program{
		Name: "ragunod",
		Run: func() error {
			ctx := signals.WithStandardSignals(context.Background())
			if err := l.run(ctx); err != nil {
				return err
			}
			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return l.Shutdown(shutdownCtx)
		},
		Opts: l.opts(),
	}
	return cli.NewCommand(prog)
}

func (l *Launcher) opts() []cli.Opt {
	return []cli.Opt{
		{
			DestP:   &l.logLevel,
			Flag:    "log-level",
			Default: zapcore.InfoLevel.String(),
			Desc:    "supported log levels are debug, info, warn and error",
		},
		{
			DestP:   &l.httpBindAddress,
			Flag:    "http-bind-address",
			Default: ":8080",
			Desc:    "bind address for the REST HTTP API",
		},
		{
			DestP:   &l.region,
			Flag:    "region",
			Default: "us-east-1",
			Desc:    "AWS region of the provisioned resources",
		},
		{
			DestP: &l.bucketName,
			Flag:  "s3-bucket-name",
			Desc:  "name of the shared document bucket",
		},
		{
			DestP: &l.bucketARN,
			Flag:  "s3-bucket-arn",
			Desc:  "ARN of the shared document bucket",
		},
		{
			DestP: &l.collectionARN,
			Flag:  "opensearch-collection-arn",
			Desc:  "ARN of the shared OpenSearch Serverless collection",
		},
		{
			DestP: &l.collectionEndpoint,
			Flag:  "opensearch-collection-endpoint",
			Desc:  "endpoint of the shared OpenSearch Serverless collection",
		},
		{
			DestP: &l.roleARN,
			Flag:  "bedrock-kb-role-arn",
			Desc:  "execution role assumed by created knowledge bases",
		},
		{
			DestP:   &l.embeddingModelARN,
			Flag:    "embedding-model-arn",
			Default: "arn:aws:bedrock:us-east-1::foundation-model/amazon.titan-embed-text-v1",
			Desc:    "embedding model bound to created knowledge bases",
		},
	}
}

func (l *Launcher) config() (tenant.Config, error) {
	cfg := tenant.Config{
		Region:            l.region,
		BucketName:        l.bucketName,
		BucketARN:         l.bucketARN,
		CollectionARN:     l.collectionARN,
		RoleARN:           l.roleARN,
		EmbeddingModelARN: l.embeddingModelARN,
	}
	if err := cfg.Valid(); err != nil {
		return tenant.Config{}, err
	}
	if l.collectionEndpoint == "" {
		return tenant.Config{}, tenant.ErrMissingConfig("opensearch-collection-endpoint")
	}
	return cfg, nil
}

// run builds the service stack and starts serving HTTP. It returns once
// the listener is up; Shutdown stops it.
func (l *Launcher) run(ctx context.Context) error {
	level, err := zapcore.ParseLevel(l.logLevel)
	if err != nil {
		return fmt.Errorf("unknown log level %q; supported levels are debug, info, warn, error", l.logLevel)
	}
	l.log = logger.New(os.Stdout, level)

	cfg, err := l.config()
	if err != nil {
		return err
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(l.region))
	if err != nil {
		return fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	store := s3.NewObjectStore(awsCfg, l.bucketName)
	search, err := opensearch.NewSearchIndexService(awsCfg, opensearch.Config{
		Endpoint: l.collectionEndpoint,
	})
	if err != nil {
		return err
	}
	registry := bedrock.NewKnowledgeBaseRegistry(awsCfg)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	var svc raguno.TenantProvisioningService
	svc = tenant.NewService(l.log.With(zap.String("service", "tenant")), cfg, store, search, registry)
	svc = tenant.NewProvisioningMetrics(reg, svc)
	svc = tenant.NewProvisioningLogger(l.log, svc)

	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"status": "healthy"}`))
	})
	r.Mount("/", tenant.NewHandler(l.log.With(zap.String("handler", "tenant")), svc))

	l.httpServer = &http.Server{
		Addr:    l.httpBindAddress,
		Handler: r,
	}

	l.log.Info("listening", zap.String("addr", l.httpBindAddress))
	go func() {
		if err := l.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.log.Error("http server failed", zap.Error(err))
		}
	}()
	return nil
}

// Shutdown drains in-flight requests and stops the HTTP server.
func (l *Launcher) Shutdown(ctx context.Context) error {
	if l.httpServer == nil {
		return nil
	}
	l.log.Info("shutting down")
	defer func() { _ = l.log.Sync() }()
	return l.httpServer.Shutdown(ctx)
}
