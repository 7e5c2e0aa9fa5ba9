package helper

import (
	"log"

	"gorm.io/gorm"
)

// CountOrZero runs the prepared count query and degrades to zero when the
// store fails: decoration counts must never break the page they adorn.
func CountOrZero(tx *gorm.DB, what string) int64 {
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count %s: %v", what, err)
		return 0
	}
	return total
}
