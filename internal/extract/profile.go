package extract

import (
	"strings"

	"FeedHarvester/internal/domain"
)

// DefaultProfileName names the fallback profile.
const DefaultProfileName = "default"

// ProfileResolver maps hostnames to extraction profiles, first match wins.
type ProfileResolver struct {
	profiles []domain.SiteProfile
	fallback domain.SiteProfile
}

// NewProfileResolver keeps profiles in the given order. More specific
// matchers must come before broader ones.
func NewProfileResolver(profiles []domain.SiteProfile, fallback domain.SiteProfile) *ProfileResolver {
	ordered := make([]domain.SiteProfile, len(profiles))
	copy(ordered, profiles)
	if fallback.Name == "" {
		fallback.Name = DefaultProfileName
	}
	return &ProfileResolver{profiles: ordered, fallback: fallback}
}

// Resolve strips a leading "www." and returns the first profile whose
// matcher is a substring of the hostname, or the fallback profile.
func (r *ProfileResolver) Resolve(hostname string) domain.SiteProfile {
	host := NormalizeHost(hostname)
	for _, p := range r.profiles {
		if p.Name != "" && strings.Contains(host, p.Name) {
			return p
		}
	}
	return r.fallback
}

// NormalizeHost lower-cases a hostname and drops a leading "www.".
func NormalizeHost(hostname string) string {
	return strings.TrimPrefix(strings.ToLower(hostname), "www.")
}
