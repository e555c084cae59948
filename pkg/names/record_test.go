package names

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		line    string
		want    Record
		wantErr bool
	}{
		{name: "female record", line: "Olivia,F,17728", want: Record{Name: "Olivia", Category: Female, Count: 17728}},
		{name: "male record", line: "Liam,M,20000", want: Record{Name: "Liam", Category: Male, Count: 20000}},
		{name: "crlf line ending", line: "Emma,F,12\r", want: Record{Name: "Emma", Category: Female, Count: 12}},
		{name: "zero count", line: "Zed,M,0", want: Record{Name: "Zed", Category: Male, Count: 0}},
		{name: "too few fields", line: "Liam,M", wantErr: true},
		{name: "too many fields", line: "Liam,M,5,extra", wantErr: true},
		{name: "blank line", line: "", wantErr: true},
		{name: "unknown category", line: "Liam,X,5", wantErr: true},
		{name: "lowercase category", line: "Liam,m,5", wantErr: true},
		{name: "non numeric count", line: "Liam,M,five", wantErr: true},
		{name: "negative count", line: "Liam,M,-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLine(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	c, err := ParseCategory("F")
	require.NoError(t, err)
	assert.Equal(t, Female, c)
	assert.Equal(t, "girl", c.Label())

	c, err = ParseCategory("M")
	require.NoError(t, err)
	assert.Equal(t, "boy", c.Label())

	_, err = ParseCategory("female")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestParseError_MatchesSentinelAndCause(t *testing.T) {
	t.Parallel()

	_, cause := ParseLine("broken")
	require.Error(t, cause)

	err := error(&ParseError{Year: 2020, Line: 7, Text: "broken", Err: cause})

	assert.True(t, errors.Is(err, ErrParse))
	assert.Contains(t, err.Error(), "year 2020 line 7")
	assert.Contains(t, err.Error(), `"broken"`)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 7, pe.Line)
}
