package entity

import "fmt"

// SegmentFileName возвращает имя файла для сегмента с индексом i.
func SegmentFileName(i int) string {
	return fmt.Sprintf(segmentFilePattern, i)
}
