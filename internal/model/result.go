// Package model 定义 sloc 的核心数据模型。
// 这些结构会被扫描器、输出层和命令层共同使用。
package model

// TotalCount 表示单次扫描的总计信息。
//
// 注意：
// - Files 表示纳入统计的文件数（包含读取失败、按 0 行计入的文件）
// - Lines 是全部文件 SLOC 之和，空行与注释行不计入
type TotalCount struct {
	Files int64 `json:"files"`
	Lines int64 `json:"lines"`
}

// ScanError 记录单文件扫描失败信息。
// 设计为“错误不阻断全量扫描”，读取失败的文件按 0 行计入总计。
type ScanError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// ScanResult 是一次根路径扫描的完整输出模型。
// PerFile 是绝对路径到 SLOC 的映射；当调用方只要总计时为 nil，
// 此时 JSON 输出也会省略该字段。
type ScanResult struct {
	Root    string           `json:"root"`
	PerFile map[string]int64 `json:"per_file,omitempty"`
	Total   TotalCount       `json:"total"`
	Errors  []ScanError      `json:"errors"`
}

// AddFile 将一个文件的统计值累加到结果中。
// perFile 为 false 时只更新总计，不维护映射。
func (r *ScanResult) AddFile(path string, lines int64, perFile bool) {
	r.Total.Files++
	r.Total.Lines += lines

	if perFile {
		if r.PerFile == nil {
			r.PerFile = make(map[string]int64)
		}
		r.PerFile[path] = lines
	}
}
