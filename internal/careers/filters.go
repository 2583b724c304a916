package careers

// FilterRecord captures the sidebar selections for one generate action.
// Immutable once collected; every field is a member of the embedded catalog.
type FilterRecord struct {
	Track        string `json:"track"`
	Industry     string `json:"industry"`
	RoleFunction string `json:"role_function"`
}
