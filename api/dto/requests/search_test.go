package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchRequest_ApplyDefaults(t *testing.T) {
	req := SearchRequest{Query: "transformers"}
	req.ApplyDefaults()
	assert.Equal(t, 1, req.Page)

	req = SearchRequest{Query: "transformers", Page: 4}
	req.ApplyDefaults()
	assert.Equal(t, 4, req.Page)
}
