package catalog

import (
	"fmt"
	"strings"
)

// PhoneLink returns a dialer link for a phone number, or "" for none
func PhoneLink(phone string) string {
	if phone == "" {
		return ""
	}
	return "tel:" + phone
}

// WebsiteLink prepends https:// to a website lacking an http scheme
func WebsiteLink(website string) string {
	if website == "" {
		return ""
	}
	if strings.HasPrefix(website, "http") {
		return website
	}
	return "https://" + website
}

// ShareMessage is the text offered when sharing a movie
func ShareMessage(title, plot, imdb string) string {
	if imdb == "" {
		imdb = "N/A"
	}
	return fmt.Sprintf("Check out \"%s\" - %s\n\nIMDB: %s/10", title, plot, imdb)
}
