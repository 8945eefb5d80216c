// Package compare computes which followed accounts do not follow back.
package compare

// Matcher decides whether a username is excluded from the report
type Matcher interface {
	Match(username string) bool
}

// Result holds the outcome of one comparison
type Result struct {
	Following int `json:"following" yaml:"following"`
	Followers int `json:"followers" yaml:"followers"`
	Mutual    int `json:"mutual" yaml:"mutual"`
	// Ignored counts non-followers dropped because the ignore list matched them
	Ignored      int      `json:"ignored" yaml:"ignored"`
	NonFollowers []string `json:"non_followers" yaml:"non_followers"`
}

// Compare returns (following - followers) minus anything ignore matches,
// sorted. A nil ignore excludes nothing.
func Compare(following, followers Set, ignore Matcher) Result {
	res := Result{
		Following: following.Len(),
		Followers: followers.Len(),
		Mutual:    following.Intersect(followers).Len(),
	}

	candidates := following.Diff(followers)
	kept := NewSet()
	for u := range candidates {
		if ignore != nil && ignore.Match(u) {
			res.Ignored++
			continue
		}
		kept.Add(u)
	}

	res.NonFollowers = kept.Sorted()
	return res
}
