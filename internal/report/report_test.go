package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sloc/internal/model"
)

func sampleResult() model.ScanResult {
	return model.ScanResult{
		Root: "/project",
		PerFile: map[string]int64{
			"/project/sub/b.py": 1,
			"/project/a.py":     2,
		},
		Total:  model.TotalCount{Files: 2, Lines: 3},
		Errors: []model.ScanError{},
	}
}

// TestPrintTablePerFile 验证表格输出包含相对路径明细和总计行，
// 且文件顺序稳定。
func TestPrintTablePerFile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, sampleResult()))

	output := buf.String()
	assert.Contains(t, output, "/project")
	assert.Contains(t, output, "a.py")
	assert.Contains(t, output, "sub/b.py")
	assert.Contains(t, output, "TOTAL")
	assert.Less(t, strings.Index(output, "a.py"), strings.Index(output, "sub/b.py"))
}

// TestPrintTableTotalOnly 验证没有 per-file 映射时只输出总计。
func TestPrintTableTotalOnly(t *testing.T) {
	result := sampleResult()
	result.PerFile = nil

	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, result))

	output := buf.String()
	assert.NotContains(t, output, "a.py")
	assert.Contains(t, output, "TOTAL")
}

// TestPrintJSON 验证 JSON 输出可以反解析且省略空映射。
func TestPrintJSON(t *testing.T) {
	result := sampleResult()
	result.PerFile = nil

	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, []model.ScanResult{result}))

	var decoded []model.ScanResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, int64(3), decoded[0].Total.Lines)
	assert.Nil(t, decoded[0].PerFile)
}
