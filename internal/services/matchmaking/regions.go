package matchmaking

// Location is a server location inside a region
type Location struct {
	Key   string
	Label string
	Emoji string
}

// Region groups the players who share a regional role
type Region struct {
	Key       string
	Label     string
	Emoji     string
	Locations []Location
}

// FallbackEmoji is used for regions without their own emoji
const FallbackEmoji = "🌍"

var regions = []Region{
	{
		Key:   "east",
		Label: "East",
		Emoji: "🌅",
		Locations: []Location{
			{Key: "ashburn", Label: "Ashburn", Emoji: "🏢"},
			{Key: "ohio", Label: "Ohio", Emoji: "🌽"},
		},
	},
	{
		Key:   "central",
		Label: "Central",
		Emoji: "🌇",
		Locations: []Location{
			{Key: "iowa", Label: "Iowa", Emoji: "🌾"},
			{Key: "san_antonio", Label: "San Antonio", Emoji: "🌵"},
		},
	},
	{
		Key:   "west",
		Label: "West",
		Emoji: "🌄",
		Locations: []Location{
			{Key: "san_francisco", Label: "San Francisco", Emoji: "🌉"},
			{Key: "quincy", Label: "Quincy", Emoji: "🏔️"},
		},
	},
}

// Regions returns the known regions in menu order
func Regions() []Region {
	out := make([]Region, len(regions))
	for i, r := range regions {
		out[i] = r
		out[i].Locations = append([]Location(nil), r.Locations...)
	}
	return out
}

// LookupRegion finds a region by key
func LookupRegion(key string) (Region, bool) {
	for _, r := range regions {
		if r.Key == key {
			return r, true
		}
	}
	return Region{}, false
}

// LookupLocation finds a location by key within a region
func (r Region) LookupLocation(key string) (Location, bool) {
	for _, l := range r.Locations {
		if l.Key == key {
			return l, true
		}
	}
	return Location{}, false
}

// RegionOfLocation finds the region a location key belongs to
func RegionOfLocation(key string) (Region, Location, bool) {
	for _, r := range regions {
		if l, ok := r.LookupLocation(key); ok {
			return r, l, true
		}
	}
	return Region{}, Location{}, false
}
