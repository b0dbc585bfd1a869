package rank

// Rarity of a rank-up achievement.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Achievement is the milestone unlocked when a player first reaches a rank.
type Achievement struct {
	Name        string
	Description string
	Rewards     []string
	Rarity      Rarity
}

var rankAchievements = map[Code]Achievement{
	K: {
		Name:        "First Steps",
		Description: "Reached K rank",
		Rewards:     []string{"50 SPA Points", "Basic Cue Unlock"},
		Rarity:      RarityCommon,
	},
	KPlus: {
		Name:        "Building Momentum",
		Description: "Reached K+ rank",
		Rewards:     []string{"100 SPA Points", "Daily Challenge Access"},
		Rarity:      RarityCommon,
	},
	I: {
		Name:        "Intermediate Player",
		Description: "Reached I rank",
		Rewards:     []string{"200 SPA Points", "Intermediate Cue Unlock"},
		Rarity:      RarityUncommon,
	},
	IPlus: {
		Name:        "Rising Star",
		Description: "Reached I+ rank",
		Rewards:     []string{"300 SPA Points", "Weekly Tournament Access"},
		Rarity:      RarityUncommon,
	},
	H: {
		Name:        "Advanced Player",
		Description: "Reached H rank",
		Rewards:     []string{"500 SPA Points", "Advanced Cue Unlock"},
		Rarity:      RarityRare,
	},
	HPlus: {
		Name:        "Gold Standard",
		Description: "Reached H+ rank",
		Rewards:     []string{"700 SPA Points", "Custom Table Access"},
		Rarity:      RarityRare,
	},
	G: {
		Name:        "Expert Level",
		Description: "Reached G rank",
		Rewards:     []string{"1000 SPA Points", "Tournament Creation"},
		Rarity:      RarityEpic,
	},
	GPlus: {
		Name:        "Platinum Elite",
		Description: "Reached G+ rank",
		Rewards:     []string{"1500 SPA Points", "Mentorship Program"},
		Rarity:      RarityEpic,
	},
	F: {
		Name:        "Master Player",
		Description: "Reached F rank",
		Rewards:     []string{"2000 SPA Points", "Master Cue Collection"},
		Rarity:      RarityLegendary,
	},
	FPlus: {
		Name:        "Diamond Master",
		Description: "Reached F+ rank",
		Rewards:     []string{"3000 SPA Points", "Exclusive Events Access"},
		Rarity:      RarityLegendary,
	},
	E: {
		Name:        "Grandmaster",
		Description: "Reached E rank",
		Rewards:     []string{"5000 SPA Points", "Grandmaster Cue Collection"},
		Rarity:      RarityLegendary,
	},
	EPlus: {
		Name:        "Legendary Player",
		Description: "Reached E+ rank",
		Rewards:     []string{"10000 SPA Points", "Legendary Status", "Hall of Fame"},
		Rarity:      RarityLegendary,
	},
}

// AchievementFor returns the rank-up milestone for a code. Unknown codes
// resolve to the lowest rank's milestone.
func AchievementFor(code Code) Achievement {
	if a, ok := rankAchievements[code]; ok {
		return a
	}
	return rankAchievements[K]
}

// GroupInfo is the display metadata for a tier group.
type GroupInfo struct {
	Name        string
	Color       string
	Icon        string
	Description string
	Benefits    []string
}

var groupInfos = map[Group]GroupInfo{
	Bronze: {
		Name: "Bronze", Color: "#CD7F32", Icon: "bronze-medal",
		Description: "Learning the fundamentals",
		Benefits:    []string{"Basic training resources", "Beginner tournaments", "Practice mode access"},
	},
	Silver: {
		Name: "Silver", Color: "#C0C0C0", Icon: "silver-medal",
		Description: "Developing intermediate skills and strategy",
		Benefits:    []string{"Intermediate tutorials", "Weekly tournaments", "Advanced practice modes"},
	},
	Gold: {
		Name: "Gold", Color: "#FFD700", Icon: "gold-medal",
		Description: "Advanced players with strong technical skills",
		Benefits:    []string{"Advanced tournaments", "Custom game modes", "Coaching opportunities"},
	},
	Platinum: {
		Name: "Platinum", Color: "#E5E4E2", Icon: "platinum-medal",
		Description: "Expert-level players with exceptional skill",
		Benefits:    []string{"Expert tournaments", "Tournament hosting", "Mentorship opportunities"},
	},
	Diamond: {
		Name: "Diamond", Color: "#B9F2FF", Icon: "diamond",
		Description: "Master-level players competing at the highest level",
		Benefits:    []string{"Master tournaments", "Exclusive events", "Premium features"},
	},
	Master: {
		Name: "Master", Color: "#9932CC", Icon: "crown",
		Description: "Grandmaster players at the pinnacle of skill",
		Benefits:    []string{"Grandmaster tournaments", "Legendary status", "Ultimate prestige"},
	},
}

func GroupInfoFor(group Group) (GroupInfo, bool) {
	info, ok := groupInfos[group]
	return info, ok
}
