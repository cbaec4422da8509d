package helper

import (
	"crypto/rand"
	"fmt"

	"gorm.io/gorm"
)

// Yugam IDs go on printed credentials and QR codes, so the alphabet skips
// look-alike characters (0/O, 1/I/L).
const yugamIDAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const yugamIDPrefix = "YGM26-"

func GenerateYugamID() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is not recoverable here
		panic(fmt.Sprintf("yugam id: %v", err))
	}
	out := make([]byte, 6)
	for i, b := range buf {
		out[i] = yugamIDAlphabet[int(b)%len(yugamIDAlphabet)]
	}
	return yugamIDPrefix + string(out)
}

// EnsureUniqueYugamID retries on the rare collision against the users table.
func EnsureUniqueYugamID(db *gorm.DB) (string, error) {
	for i := 0; i < 5; i++ {
		id := GenerateYugamID()
		var cnt int64
		if err := db.Table("users").Where("yugam_id = ?", id).Count(&cnt).Error; err != nil {
			return "", err
		}
		if cnt == 0 {
			return id, nil
		}
	}
	return "", fmt.Errorf("could not allocate a unique yugam id")
}
