package csvimport

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_ParseHeader(t *testing.T) {
	t.Run("normalizes headers to lower case", func(t *testing.T) {
		parser, err := NewParser(strings.NewReader("Numero_Factura,VALOR_TOTAL\nF-1,100\n"))
		require.NoError(t, err)
		require.NoError(t, parser.ParseHeader())

		assert.Equal(t, []string{"numero_factura", "valor_total"}, parser.Headers())
		assert.True(t, parser.HasHeader("numero_factura"))
		assert.False(t, parser.HasHeader("Numero_Factura"))
	})

	t.Run("strips BOM", func(t *testing.T) {
		parser, err := NewParser(strings.NewReader("\xEF\xBB\xBFnumero_factura\nF-1\n"))
		require.NoError(t, err)
		require.NoError(t, parser.ParseHeader())
		assert.True(t, parser.HasHeader("numero_factura"))
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := NewParser(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("invalid encoding", func(t *testing.T) {
		_, err := NewParser(strings.NewReader("numero\xff\xfe,valor\n"))
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})
}

func TestParser_RequireHeaders(t *testing.T) {
	parser, err := NewParser(strings.NewReader("numero_factura,valor_total\n"))
	require.NoError(t, err)
	require.NoError(t, parser.ParseHeader())

	assert.NoError(t, parser.RequireHeaders("numero_factura", "valor_total"))

	err = parser.RequireHeaders("numero_factura", "fecha_emision")
	require.ErrorIs(t, err, ErrInvalidHeader)
	assert.Contains(t, err.Error(), "fecha_emision")
}

func TestParser_ReadAllRows(t *testing.T) {
	input := "numero_factura,valor_total\nF-1,100.50\n,\nF-2,200\n"
	parser, err := NewParser(strings.NewReader(input))
	require.NoError(t, err)
	require.NoError(t, parser.ParseHeader())

	rows, err := parser.ReadAllRows()
	require.NoError(t, err)
	require.Len(t, rows, 2, "empty row should be skipped")

	assert.Equal(t, "F-1", rows[0].Get("numero_factura"))
	assert.Equal(t, "100.50", rows[0].Get("valor_total"))
	assert.Equal(t, 2, rows[0].LineNumber)
	assert.Equal(t, "F-2", rows[1].Get("numero_factura"))
	assert.Equal(t, 4, rows[1].LineNumber)
}

func TestParser_ShortRow(t *testing.T) {
	parser, err := NewParser(strings.NewReader("a,b,c\n1,2\n"))
	require.NoError(t, err)
	require.NoError(t, parser.ParseHeader())

	row, err := parser.ReadRow()
	require.NoError(t, err)
	assert.Equal(t, "2", row.Get("b"))
	assert.Equal(t, "", row.Get("c"))

	_, err = parser.ReadRow()
	assert.Equal(t, io.EOF, err)
}

func TestNormalizeCellNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12345.0", "12345"},
		{" 12345.0 ", "12345"},
		{"F-881", "F-881"},
		{"100.05", "100.05"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCellNumber(tt.in), "input %q", tt.in)
	}
}

func TestParseDate(t *testing.T) {
	t.Run("iso date", func(t *testing.T) {
		d, err := ParseDate("2026-03-15")
		require.NoError(t, err)
		assert.Equal(t, 15, d.Day())
	})

	t.Run("slash date day first", func(t *testing.T) {
		d, err := ParseDate("15/03/2026")
		require.NoError(t, err)
		assert.Equal(t, time.March, d.Month())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseDate("pronto")
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseDate("")
		assert.Error(t, err)
	})
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("1500.75")
	require.NoError(t, err)
	assert.Equal(t, "1500.75", amount.String())

	_, err = ParseAmount("mil pesos")
	assert.Error(t, err)

	_, err = ParseAmount("")
	assert.Error(t, err)
}

func TestErrorCollection(t *testing.T) {
	ec := NewErrorCollection(2)
	ec.AddRequiredError(2, "valor_total")
	ec.AddFormatError(3, "fecha_glosa", "YYYY-MM-DD", "ayer")
	ec.AddReferenceError(4, "numero_factura", "F-9", "invoice")

	assert.Equal(t, 2, ec.Count())
	assert.Equal(t, 3, ec.TotalCount())
	assert.True(t, ec.HasErrors())
	assert.Contains(t, ec.Errors()[0].Error(), "valor_total")
}
