package selection

// User is one account to create in the installed system. Ordering in
// State.Users is preserved into the generated users section.
type User struct {
	Name string `yaml:"name"`
	// Groups are supplementary group memberships. "wheel" is added
	// automatically when Admin is set.
	Groups []string `yaml:"groups,omitempty"`
	// PasswordHash is an opaque blob from the hashing collaborator.
	PasswordHash string `yaml:"password_hash"`
	// Shell is one of Shells.
	Shell string `yaml:"shell"`
	// Admin grants sudo via the wheel group.
	Admin bool `yaml:"admin"`
}

// EffectiveGroups returns the group memberships to write into the system
// document, with "wheel" prepended for admin users and duplicates collapsed.
func (u User) EffectiveGroups() []string {
	var groups []string
	seen := map[string]bool{}
	add := func(g string) {
		if g != "" && !seen[g] {
			seen[g] = true
			groups = append(groups, g)
		}
	}
	if u.Admin {
		add("wheel")
	}
	for _, g := range u.Groups {
		add(g)
	}
	return groups
}
