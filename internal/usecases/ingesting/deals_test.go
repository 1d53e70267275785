package ingesting

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedOptions() NormalizeOptions {
	seq := 0
	return NormalizeOptions{
		MaxRecords: 10000,
		Now: func() time.Time {
			return time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)
		},
		NewID: func() string {
			seq++
			return fmt.Sprintf("deal-%d", seq)
		},
	}
}

func TestNormalizeDeals_MinimalSheet(t *testing.T) {
	grid := [][]string{
		{"Deal", "Stage", "AE"},
		{"Acme", "Deal Won", "Alice"},
		{"Globex", "Deal Lost", "Bob"},
		{"", "", ""},
	}

	deals, stats := NormalizeDeals(grid, fixedOptions())

	require.Len(t, deals, 2)
	assert.Equal(t, 2, stats.Kept)

	acme := deals[0]
	assert.Equal(t, "deal-1", acme.ID)
	assert.Equal(t, 2, acme.SourceRow)
	assert.Equal(t, "Acme", acme.DealName)
	assert.Equal(t, "Deal Won", acme.Stage)
	assert.Equal(t, "Alice", acme.AE)
	assert.Equal(t, "Unknown", acme.Region)
	assert.Equal(t, "Unknown", acme.Industry)
	assert.Equal(t, "Medium", acme.Confidence)
	assert.Equal(t, "2024-03-10", acme.Date)
	assert.Nil(t, acme.CloseDate)
	assert.Nil(t, acme.LeadSource)
	assert.Equal(t, 0.0, acme.Amount)
	assert.Equal(t, time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC), acme.CreatedAt)

	assert.Equal(t, "Globex", deals[1].DealName)
	assert.Equal(t, "Bob", deals[1].AE)
	assert.Equal(t, 3, deals[1].SourceRow)
}

func TestNormalizeDeals_FiltersRows(t *testing.T) {
	grid := [][]string{
		{"Deal Name", "Deal Stage", "AE", "Amount"},
		{"Kept", "Negotiation", "Ana", "100"},
		{"", "Negotiation", "Ana", "100"},
		{"No stage", "", "Ana", "100"},
		{"Rejected lead", "Reject", "Ana", "100"},
		{"Rejected lead 2", "REJECTED", "Ana", "100"},
		{"Kept too", "Deal Won", "", ""},
	}

	deals, stats := NormalizeDeals(grid, fixedOptions())

	require.Len(t, deals, 2)
	assert.Equal(t, "Kept", deals[0].DealName)
	assert.Equal(t, "Kept too", deals[1].DealName)
	assert.Equal(t, "Unknown", deals[1].AE)
	assert.Equal(t, 6, stats.Rows)
	assert.Equal(t, 2, stats.MissingRequired)
	assert.Equal(t, 2, stats.DiscardedByStage)
}

func TestNormalizeDeals_AllFields(t *testing.T) {
	grid := [][]string{
		{" Deal Name ", "Deal Stage", "AE", "Geography (New)", "Industry", "Amount", "Potential Deal Size", "Confidence", "Date", "Close Date", "Lead Source (New)", "Notes"},
		{"Initech", "Proposal", "Carla", "India", "Fintech", "₹5,00,000", "$1,200,000.50", "High", "2024-01-05", "2024-06-30", "Webinar", "ignored"},
	}

	deals, _ := NormalizeDeals(grid, fixedOptions())

	require.Len(t, deals, 1)
	d := deals[0]
	assert.Equal(t, "Initech", d.DealName)
	assert.Equal(t, "India", d.Region)
	assert.Equal(t, "Fintech", d.Industry)
	assert.Equal(t, 500000.0, d.Amount)
	assert.Equal(t, 1200000.5, d.PotentialSize)
	assert.Equal(t, "High", d.Confidence)
	assert.Equal(t, "2024-01-05", d.Date)
	require.NotNil(t, d.CloseDate)
	assert.Equal(t, "2024-06-30", *d.CloseDate)
	require.NotNil(t, d.LeadSource)
	assert.Equal(t, "Webinar", *d.LeadSource)
}

func TestNormalizeDeals_PotentialSizeFallsBackToAmount(t *testing.T) {
	grid := [][]string{
		{"Deal Name", "Deal Stage", "Amount", "Potential Deal Size"},
		{"A", "Open", "$2,500", ""},
		{"B", "Open", "1000", "n/a"},
		{"C", "Open", "1000", "3000"},
	}

	deals, _ := NormalizeDeals(grid, fixedOptions())

	require.Len(t, deals, 3)
	assert.Equal(t, 2500.0, deals[0].PotentialSize)
	assert.Equal(t, 1000.0, deals[1].PotentialSize)
	assert.Equal(t, 3000.0, deals[2].PotentialSize)
}

func TestNormalizeDeals_LastDuplicateHeaderWins(t *testing.T) {
	grid := [][]string{
		{"Deal Name", "Deal Stage", "Geography", "Geography (New)"},
		{"A", "Open", "US", "India"},
		{"B", "Open", "US", ""},
	}

	deals, _ := NormalizeDeals(grid, fixedOptions())

	require.Len(t, deals, 2)
	assert.Equal(t, "India", deals[0].Region)
	assert.Equal(t, "Unknown", deals[1].Region)
}

func TestNormalizeDeals_ShortRowsAndMaxRecords(t *testing.T) {
	grid := [][]string{
		{"Deal Name", "Deal Stage", "AE"},
		{"A", "Open"},
		{"B", "Open", "Ana"},
		{"C", "Open", "Ana"},
	}

	opts := fixedOptions()
	opts.MaxRecords = 2
	deals, stats := NormalizeDeals(grid, opts)

	require.Len(t, deals, 2)
	assert.Equal(t, "Unknown", deals[0].AE)
	assert.True(t, stats.Truncated)
}

func TestNormalizeDeals_EmptyGrid(t *testing.T) {
	deals, _ := NormalizeDeals(nil, fixedOptions())
	assert.Empty(t, deals)

	deals, _ = NormalizeDeals([][]string{{"Deal Name", "Deal Stage"}}, fixedOptions())
	assert.Empty(t, deals)
}

func TestCleanCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"$1,234.50", 1234.5},
		{"₹ 5,00,000", 500000},
		{"â‚¹2,000", 2000},
		{"€3.5", 3.5},
		{"£ 10", 10},
		{`"1,000"`, 1000},
		{"'750'", 750},
		{"42", 42},
		{"", 0},
		{"abc", 0},
		{"12.3.4", 0},
		{"-50", 0},
		{"1e400", 0},
		{"$" + strings.Repeat("9", 330), 0},
		{"1e300", 1e300},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := CleanCurrency(tt.in)
			assert.Equal(t, tt.want, got)

			// Limpar de novo um valor já limpo não muda nada
			again := CleanCurrency(strconv.FormatFloat(got, 'f', -1, 64))
			assert.Equal(t, got, again)
		})
	}
}
