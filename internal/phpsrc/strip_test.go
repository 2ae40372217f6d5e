package phpsrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "line and block comments",
			input:    "<?php\n// comment\necho 'a';  /* c */ echo \"b\";\n",
			expected: "<?php\n echo 'a'; echo \"b\"; ",
		},
		{
			name:     "hash comment",
			input:    "<?php $a = 1; # trailing\n$b = 2;",
			expected: "<?php $a = 1; $b = 2;",
		},
		{
			name:     "doc comment",
			input:    "<?php\n/**\n * Docs.\n */\nfunction f() {}\n",
			expected: "<?php\n function f() {} ",
		},
		{
			name:     "comment between tokens emits nothing",
			input:    "<?php $a/*x*/$b;",
			expected: "<?php $a$b;",
		},
		{
			name:     "inline html is kept verbatim",
			input:    "<p>Hi   there</p>\n<?php echo 1 ?>\n<div>  x  </div>",
			expected: "<p>Hi   there</p>\n<?php echo 1 ?>\n<div>  x  </div>",
		},
		{
			name:     "short echo tag",
			input:    "<a><?= $title   // c\n?></a>",
			expected: "<a><?= $title ?></a>",
		},
		{
			name:     "comment markers inside strings survive",
			input:    "<?php $a = \"// not a comment\"; $b = '/* nor this */'; # real",
			expected: "<?php $a = \"// not a comment\"; $b = '/* nor this */'; ",
		},
		{
			name:     "escaped quotes",
			input:    "<?php $a = 'it\\'s  # fine';",
			expected: "<?php $a = 'it\\'s  # fine';",
		},
		{
			name:     "line comment stops at close tag",
			input:    "<?php echo 1; // done ?>\nafter",
			expected: "<?php echo 1; ?>\nafter",
		},
		{
			name:     "heredoc body is untouched",
			input:    "<?php\n$x = <<<EOT\n  keep   /* this */\nEOT;\necho $x;",
			expected: "<?php\n$x = <<<EOT\n  keep   /* this */\nEOT;\necho $x;",
		},
		{
			name:     "nowdoc",
			input:    "<?php $x = <<<'TXT'\n# not a comment\nTXT;\n",
			expected: "<?php $x = <<<'TXT'\n# not a comment\nTXT;\n",
		},
		{
			name:     "attribute is not a comment",
			input:    "<?php #[Attr]\nfunction f(){}",
			expected: "<?php #[Attr] function f(){}",
		},
		{
			name:     "unterminated block comment runs to end",
			input:    "<?php echo 1; /* never closed",
			expected: "<?php echo 1; ",
		},
		{
			name:     "uppercase open tag",
			input:    "<?PHP\techo 1;",
			expected: "<?PHP\techo 1;",
		},
		{
			name:     "no php tags at all",
			input:    "body { color: red; } /* css */",
			expected: "body { color: red; } /* css */",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strip([]byte(tt.input))
			assert.Equal(t, tt.expected, string(got))
		})
	}
}

func TestStrip_Idempotent(t *testing.T) {
	inputs := []string{
		"<?php\n// c\nfunction a() {\n\treturn 1; /* x */\n}\n",
		"<html><?php if ($a): ?>\n<b>yes</b><?php endif; ?></html>",
	}
	for _, in := range inputs {
		once := Strip([]byte(in))
		twice := Strip(once)
		assert.Equal(t, string(once), string(twice))
	}
}
