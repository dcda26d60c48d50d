package layouts

// AppName is shown in every page title.
const AppName = "ScraprIQ"

// CalculateTitle appends the application name to a page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - " + AppName
	}
	return AppName
}
