package services

import (
	"hash/fnv"
	"strings"
	"unicode"

	"subscription-tracker/internal/models"
)

var avatarPalette = []string{
	"#E50914", "#1DB954", "#FA0F00", "#10A37F", "#FF9900",
	"#0061FF", "#7B61FF", "#FF4F8B", "#00A8E1", "#F5A623",
}

// BrandAvatarFor builds the initials badge for a service name. The color is
// stable for a given name.
func BrandAvatarFor(name string) models.BrandAvatar {
	var initials []rune
	for _, word := range strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		initials = append(initials, unicode.ToUpper([]rune(word)[0]))
		if len(initials) == 3 {
			break
		}
	}
	if len(initials) == 0 {
		initials = []rune{'?'}
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(name))))

	return models.BrandAvatar{
		Initials: string(initials),
		Color:    avatarPalette[h.Sum32()%uint32(len(avatarPalette))],
	}
}
