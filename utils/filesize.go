package utils

import "fmt"

// FormatFileSize renders a byte count the way attachment records store
// it: "512 B", "1.50 KB", "2.35 MB".
func FormatFileSize(bytes int64) string {
	const unit = 1024
	switch {
	case bytes < unit:
		return fmt.Sprintf("%d B", bytes)
	case bytes < unit*unit:
		return fmt.Sprintf("%.2f KB", float64(bytes)/unit)
	case bytes < unit*unit*unit:
		return fmt.Sprintf("%.2f MB", float64(bytes)/(unit*unit))
	default:
		return fmt.Sprintf("%.2f GB", float64(bytes)/(unit*unit*unit))
	}
}
