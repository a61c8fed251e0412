package profile

// InterestOption is one selectable interest tag with its display label.
type InterestOption struct {
	Tag   string
	Label string
}

// Interests is the fixed catalog of selectable interest tags.
var Interests = []InterestOption{
	{Tag: "travel", Label: "Travel"},
	{Tag: "music", Label: "Music"},
	{Tag: "movies", Label: "Movies"},
	{Tag: "fitness", Label: "Fitness"},
	{Tag: "cooking", Label: "Cooking"},
	{Tag: "photography", Label: "Photography"},
	{Tag: "art", Label: "Art"},
	{Tag: "reading", Label: "Reading"},
	{Tag: "gaming", Label: "Gaming"},
	{Tag: "hiking", Label: "Hiking"},
	{Tag: "yoga", Label: "Yoga"},
	{Tag: "dancing", Label: "Dancing"},
	{Tag: "pets", Label: "Pets"},
	{Tag: "coffee", Label: "Coffee"},
	{Tag: "wine", Label: "Wine"},
	{Tag: "foodie", Label: "Foodie"},
	{Tag: "sports", Label: "Sports"},
	{Tag: "running", Label: "Running"},
	{Tag: "cycling", Label: "Cycling"},
	{Tag: "swimming", Label: "Swimming"},
	{Tag: "camping", Label: "Camping"},
	{Tag: "tech", Label: "Tech"},
	{Tag: "fashion", Label: "Fashion"},
	{Tag: "volunteering", Label: "Volunteering"},
}

// KnownInterest reports whether tag is part of the catalog.
func KnownInterest(tag string) bool {
	for _, opt := range Interests {
		if opt.Tag == tag {
			return true
		}
	}
	return false
}

// InterestLabel returns the display label for a tag, or the tag itself when
// it is not in the catalog.
func InterestLabel(tag string) string {
	for _, opt := range Interests {
		if opt.Tag == tag {
			return opt.Label
		}
	}
	return tag
}
