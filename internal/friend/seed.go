package friend

// AvatarBase is the placeholder avatar service used for seed and new friends.
const AvatarBase = "https://i.pravatar.cc/48"

// Seed returns the friends the application starts with.
func Seed() []Friend {
	return []Friend{
		{ID: "118836", Name: "Juan", Image: AvatarBase + "?u=118836", Balance: -7},
		{ID: "933372", Name: "Sara", Image: AvatarBase + "?u=933372", Balance: 20},
		{ID: "499476", Name: "Anthony", Image: AvatarBase + "?u=499476", Balance: 0},
	}
}
