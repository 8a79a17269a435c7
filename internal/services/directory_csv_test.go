package services

import (
	"math/rand"
	"testing"

	"subscription-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDirectoryCSV = "# cancellation directory\r\n" +
	"Service,cancel_url_hint,flow,region,support_hint,known_paths\r\n" +
	"Netflix,https://www.netflix.com/cancelplan,web,global,,Account > Membership\r\n" +
	"\r\n" +
	"\"Disney+, Hulu bundle\",https://www.disneyplus.com/account,web,us,,\n" +
	"   ,https://example.com,web,us,,\n" +
	"Spotify,https://www.spotify.com/account/subscription/,web\n"

func TestParseDirectoryCSV(t *testing.T) {
	rows := ParseDirectoryCSV(sampleDirectoryCSV)

	require.Len(t, rows, 3)
	assert.Equal(t, models.DirectoryRow{
		Service:       "Netflix",
		CancelURLHint: "https://www.netflix.com/cancelplan",
		Flow:          "web",
		Region:        "global",
		KnownPaths:    "Account > Membership",
	}, rows[0])
	assert.Equal(t, "Disney+, Hulu bundle", rows[1].Service)
	assert.Equal(t, "us", rows[1].Region)
	assert.Equal(t, "Spotify", rows[2].Service)
	assert.Empty(t, rows[2].Region, "short rows leave missing columns empty")
}

func TestParseDirectoryCSV_RepeatedHeaderUsesLastColumn(t *testing.T) {
	text := "service,region,region\n" +
		"Netflix,global,us\n" +
		"Spotify,eu\n"

	rows := ParseDirectoryCSV(text)

	require.Len(t, rows, 2)
	assert.Equal(t, "us", rows[0].Region)
	assert.Empty(t, rows[1].Region)
}

func TestParseDirectoryCSV_DegradesToEmpty(t *testing.T) {
	tests := map[string]string{
		"empty":            "",
		"header only":      "service,cancel_url_hint\n",
		"no header":        "name,url\nNetflix,https://netflix.com\n",
		"only blank lines": "\n\r\n   \n",
	}

	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			rows := ParseDirectoryCSV(text)
			assert.NotNil(t, rows)
			assert.Empty(t, rows)
		})
	}
}

func TestParseDirectoryCSV_NeverPanicsOnArbitraryInput(t *testing.T) {
	alphabet := []rune("service,\"\r\n abc(web)ñ")
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		buf := make([]rune, rng.Intn(80))
		for j := range buf {
			buf[j] = alphabet[rng.Intn(len(alphabet))]
		}

		assert.NotPanics(t, func() {
			for _, row := range ParseDirectoryCSV(string(buf)) {
				assert.NotEmpty(t, row.Service)
			}
		})
	}
}

func TestSplitCSVLine(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitCSVLine("a,b,c"))
	assert.Equal(t, []string{"a,b", "c"}, splitCSVLine(`"a,b",c`))
	assert.Equal(t, []string{"", ""}, splitCSVLine(","))
	assert.Equal(t, []string{"ab"}, splitCSVLine(`a""b`))
}
