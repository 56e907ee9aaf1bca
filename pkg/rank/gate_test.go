package rank

import (
	"testing"

	"github.com/ridgeline-media/topfive/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyGate_NilContractPassesEverything(t *testing.T) {
	products := []models.VerifiedProduct{{ProductName: "A"}, {ProductName: "B"}}
	passed, rejected := ApplyGate(products, nil)
	assert.Len(t, passed, 2)
	assert.Empty(t, rejected)
}

func TestApplyGate_DropsDeniedTerms(t *testing.T) {
	contract := &models.SubcategoryContract{Deny: []string{"smart display"}}
	products := []models.VerifiedProduct{
		{ProductName: "Echo Dot Smart Speaker"},
		{ProductName: "Echo Show Smart Display"},
	}
	passed, rejected := ApplyGate(products, contract)
	require.Len(t, passed, 1)
	assert.Equal(t, "Echo Dot Smart Speaker", passed[0].ProductName)
	require.Len(t, rejected, 1)
	assert.Equal(t, "Echo Show Smart Display", rejected[0].ProductName)
}

func TestApplyGate_RequiresAllowMatchWhenConfigured(t *testing.T) {
	contract := &models.SubcategoryContract{Allow: []string{"headphones"}}
	products := []models.VerifiedProduct{
		{ProductName: "Sony Headphones"},
		{ProductName: "Sony Speaker"},
	}
	passed, rejected := ApplyGate(products, contract)
	require.Len(t, passed, 1)
	assert.Equal(t, "Sony Headphones", passed[0].ProductName)
	assert.Len(t, rejected, 1)
}
