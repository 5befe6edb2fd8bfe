package csvimport

import (
	"os"
	"strings"
	"testing"

	"github.com/paydeck/bank_portal_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_UploadFixture(t *testing.T) {
	data, err := os.ReadFile("../../../testdata/payroll_upload.csv")
	require.NoError(t, err)

	rows, err := Parse(strings.NewReader(string(data)))
	require.NoError(t, err)
	require.Len(t, rows, 6)

	// First: fully valid row.
	assert.True(t, rows[0].Valid)
	assert.Equal(t, "BANK001", rows[0].BankID)
	assert.Equal(t, "1234567890", rows[0].AccountNumber)
	assert.Equal(t, "John Doe", rows[0].Name)
	assert.Equal(t, "25000.00", rows[0].Amount.StringFixed(2))
	assert.Equal(t, "Salary Payment", rows[0].Remarks)
	assert.Equal(t, 2, rows[0].Line)

	// Second: decimal amount.
	assert.True(t, rows[1].Valid)
	assert.Equal(t, "48000.50", rows[1].Amount.StringFixed(2))

	// Third: missing amount.
	assert.False(t, rows[2].Valid)
	assert.Equal(t, "amount is required", rows[2].Reason)

	// Fourth: present but unparsable amount gets its own reason.
	assert.False(t, rows[3].Valid)
	assert.Contains(t, rows[3].Reason, "is not a number")

	// Fifth: missing bank id.
	assert.False(t, rows[4].Valid)
	assert.Equal(t, "bank id is required", rows[4].Reason)

	// Sixth: wrong field count.
	assert.False(t, rows[5].Valid)
	assert.Contains(t, rows[5].Reason, "expected 5 fields")
}

func TestParse_HeaderOnlyYieldsNoRows(t *testing.T) {
	rows, err := Parse(strings.NewReader("Bank ID,Account Number,Name,Amount,Remarks\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParse_HeaderContentIsNotValidated(t *testing.T) {
	input := "anything,goes,in,the,header\nBANK001,1234567890,John Doe,25000,Salary Payment\n"
	rows, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Valid)
}

func TestParse_WhitespaceOnlyFieldIsMissing(t *testing.T) {
	input := "Bank ID,Account Number,Name,Amount,Remarks\nBANK001,1234567890,   ,25000,Salary Payment\n"
	rows, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].Valid)
	assert.Equal(t, "name is required", rows[0].Reason)
}

func TestParse_UnreadableInput(t *testing.T) {
	// An unterminated quote makes the input unreadable as CSV.
	input := "Bank ID,Account Number,Name,Amount,Remarks\n\"BANK001,123,John,25000,Pay\n"
	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrParse)
}

func TestValidRows(t *testing.T) {
	rows := []Row{
		{Valid: true, Name: "A"},
		{Valid: false, Name: "B"},
		{Valid: true, Name: "C"},
	}

	valid := ValidRows(rows)
	require.Len(t, valid, 2)
	assert.Equal(t, "A", valid[0].Name)
	assert.Equal(t, "C", valid[1].Name)
}
