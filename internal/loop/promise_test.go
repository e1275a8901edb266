package loop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPromise(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		response string
		phrase   string
		want     bool
	}{
		{"exact tag", "<promise>DONE</promise>", "DONE", true},
		{"surrounded by text", "foo <promise>DONE</promise> bar", "DONE", true},
		{"whitespace inside tag", "<promise>  DONE \n</promise>", "DONE", true},
		{"multi-word phrase", "<promise>TESTS PASSING</promise>", "TESTS PASSING", true},
		{"upper-case tags", "<PROMISE>DONE</PROMISE>", "DONE", true},
		{"mixed-case tags", "<Promise>DONE</pRoMiSe>", "DONE", true},
		{"phrase case differs", "<promise>done</promise>", "DONE", false},
		{"different phrase", "<promise>DONE</promise>", "OTHER", false},
		{"partial phrase", "<promise>DONE SOON</promise>", "DONE", false},
		{"phrase without tag", "DONE", "DONE", false},
		{"unclosed tag", "<promise>DONE", "DONE", false},
		{"second tag matches", "<promise>NOPE</promise> then <promise>DONE</promise>", "DONE", true},
		{"empty phrase never matches", "<promise></promise>", "", false},
		{"metacharacters are literal", "<promise>ALL TESTS PASS (100%)</promise>", "ALL TESTS PASS (100%)", true},
		{"dot is not a wildcard", "<promise>v1x0</promise>", "v1.0", false},
		{"unicode phrase", "<promise>任務完成！🥇</promise>", "任務完成！🥇", true},
		{"no-break space padding", "<promise>\u00a0DONE\u00a0</promise>", "DONE", true},
		{"em space padding", "<promise>\u2003DONE\u2003</promise>", "DONE", true},
		{"ideographic space padding", "<promise>\u3000DONE\u3000</promise>", "DONE", true},
		{"vertical tab and BOM padding", "<promise>\v\ufeffDONE\u2028</promise>", "DONE", true},
		{"no-break space inside phrase is literal", "<promise>TESTS\u00a0PASSING</promise>", "TESTS PASSING", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DetectPromise(tt.response, tt.phrase))
		})
	}
}

func TestPromisePatternIsCached(t *testing.T) {
	t.Parallel()
	assert.Same(t, promisePattern("CACHED"), promisePattern("CACHED"))
	assert.NotSame(t, promisePattern("CACHED"), promisePattern("OTHER"))
}

func TestPromiseTagIsDetected(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "<promise>FIXED</promise>", PromiseTag("FIXED"))
	assert.True(t, DetectPromise("output "+PromiseTag("FIXED"), "FIXED"))
}
