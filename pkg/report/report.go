// Package report 是唯讀的報表協作者：
// 只依賴最小的讀取面 (DisplayInfo)，不認識任何帳務型別、不改變任何狀態
package report

import (
	"fmt"
	"io"
)

// Displayer 是報表需要的最小讀取面：一行人類可讀的摘要
type Displayer interface {
	DisplayInfo() string
}

// Lines 依傳入順序產生逐行摘要
func Lines[T Displayer](items []T) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, item.DisplayInfo())
	}
	return lines
}

// Write 將報表寫入 w，一項目一行
func Write[T Displayer](w io.Writer, items []T) {
	for _, line := range Lines(items) {
		fmt.Fprintln(w, line)
	}
}
