package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-verify-api/internal/config"
)

func TestCandidates_DefaultsOnly(t *testing.T) {
	cands := Candidates(&config.Config{})

	require.Len(t, cands, len(defaultTables))
	for i, table := range defaultTables {
		assert.Equal(t, table, cands[i].Table)
		assert.Equal(t, defaultTokenColumns, cands[i].TokenColumns)
		assert.Equal(t, defaultApprovedValues, cands[i].ApprovedValues)
	}
}

func TestCandidates_ConfiguredComesFirst(t *testing.T) {
	cfg := &config.Config{
		Verification: config.VerificationConfig{
			Table:        "member_licenses",
			TokenColumns: []string{"qr", "serial"},
		},
	}

	cands := Candidates(cfg)

	require.Len(t, cands, len(defaultTables)+1)
	assert.Equal(t, "member_licenses", cands[0].Table)
	assert.Equal(t, []string{"qr", "serial"}, cands[0].TokenColumns)
	// Unconfigured lists stay empty on the configured candidate.
	assert.Empty(t, cands[0].StatusColumns)
	assert.Empty(t, cands[0].ApprovedValues)
	assert.Equal(t, defaultTables[0], cands[1].Table)
}

func TestCandidates_ConfiguredNeedsTableAndTokenColumn(t *testing.T) {
	onlyTable := &config.Config{
		Verification: config.VerificationConfig{Table: "member_licenses"},
	}
	assert.Len(t, Candidates(onlyTable), len(defaultTables))

	onlyColumns := &config.Config{
		Verification: config.VerificationConfig{TokenColumns: []string{"qr"}},
	}
	assert.Len(t, Candidates(onlyColumns), len(defaultTables))
}

func TestCandidates_BlankTokenColumnRejected(t *testing.T) {
	cfg := &config.Config{
		Verification: config.VerificationConfig{
			Table:        "member_licenses",
			TokenColumns: []string{""},
		},
	}
	assert.Len(t, Candidates(cfg), len(defaultTables))
}
