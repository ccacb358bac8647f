package raguno_test

import (
	"testing"

	"github.com/raguno/raguno"
	"github.com/raguno/raguno/kit/platform/errors"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeTenantID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Acme-01", "acme-01"},
		{"  acme-01  ", "acme-01"},
		{"ACME_Corp", "acme_corp"},
		{"", ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, raguno.NormalizeTenantID(c.in))
	}
}

func TestTenantValid(t *testing.T) {
	cases := []struct {
		name     string
		id       string
		wantCode string
	}{
		{"ok", "acme-01", ""},
		{"ok underscore", "acme_corp", ""},
		{"two characters", "ab", ""},
		{"empty", "", errors.EInvalid},
		{"one character", "a", errors.EInvalid},
		{"space", "acme corp", errors.EInvalid},
		{"uppercase is not normalized form", "Acme", errors.EInvalid},
		{"punctuation", "acme!", errors.EInvalid},
		{"unicode", "acmé", errors.EInvalid},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := raguno.Tenant{ID: c.id}.Valid()
			if c.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, c.wantCode, errors.ErrorCode(err))
		})
	}
}

func TestTenantResourceNames(t *testing.T) {
	tn := raguno.Tenant{ID: "acme-01"}
	assert.Equal(t, "acme-01/", tn.StoragePrefix())
	assert.Equal(t, "acme-01_index", tn.IndexName())
	assert.Equal(t, "kb-acme-01", tn.KnowledgeBaseName())
}

func TestDefaultIndexSchema(t *testing.T) {
	schema := raguno.DefaultIndexSchema()
	assert.Equal(t, 1536, schema.VectorDimension)
	assert.Equal(t, 512, schema.EFConstruction)
	assert.Equal(t, 16, schema.M)
	assert.Equal(t, "faiss", schema.Engine)
}
