package helpers

import (
	"fmt"
	"math/rand"
)

// RandomGender picks "male" or "female" for accounts that register without one.
func RandomGender() string {
	if rand.Intn(2) == 0 {
		return "male"
	}
	return "female"
}

// AvatarURLFor returns a placeholder portrait URL matching the gender.
func AvatarURLFor(gender string) string {
	kind := "men"
	if gender == "female" {
		kind = "women"
	}
	return fmt.Sprintf("https://randomuser.me/api/portraits/%s/%d.jpg", kind, rand.Intn(100))
}
