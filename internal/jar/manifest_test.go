package jar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifest(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]string
	}{
		{
			name:  "simple attributes",
			input: "Manifest-Version: 1.0\nSpark-HasRPackage: true\n",
			expected: map[string]string{
				"Manifest-Version":  "1.0",
				"Spark-HasRPackage": "true",
			},
		},
		{
			name:  "crlf line endings",
			input: "Manifest-Version: 1.0\r\nSpark-HasRPackage: true\r\n",
			expected: map[string]string{
				"Manifest-Version":  "1.0",
				"Spark-HasRPackage": "true",
			},
		},
		{
			name:  "wrapped value joined from continuation lines",
			input: "Main-Class: org.apache.spark.examples.VeryLongPackageNameIndeed.SparkPi\n Launcher\nManifest-Version: 1.0\n",
			expected: map[string]string{
				"Main-Class":       "org.apache.spark.examples.VeryLongPackageNameIndeed.SparkPiLauncher",
				"Manifest-Version": "1.0",
			},
		},
		{
			name:  "main section ends at blank line",
			input: "Manifest-Version: 1.0\n\nName: org/apache/spark/\nSealed: true\n",
			expected: map[string]string{
				"Manifest-Version": "1.0",
			},
		},
		{
			name:  "line without colon is ignored",
			input: "Manifest-Version: 1.0\ngarbage line\nSpark-HasRPackage: true\n",
			expected: map[string]string{
				"Manifest-Version":  "1.0",
				"Spark-HasRPackage": "true",
			},
		},
		{
			name:     "empty manifest",
			input:    "",
			expected: map[string]string{},
		},
		{
			name:  "value whitespace is preserved",
			input: "Spark-HasRPackage: true \n",
			expected: map[string]string{
				"Spark-HasRPackage": "true ",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			attrs, err := ParseManifest(strings.NewReader(test.input))
			require.NoError(t, err)
			assert.Equal(t, test.expected, attrs)
		})
	}
}
