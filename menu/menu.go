package menu

// RoutesWithoutMenu are the names of the routes rendered without the navigation menu
var RoutesWithoutMenu = []string{"login", "register", "tv"}

// Configuration is the navigation menu
type Configuration struct {
	Categories []CategoryConfiguration
}

// CategoryConfiguration is a titled group of menu items
type CategoryConfiguration struct {
	Label string
	Items []ItemConfiguration
}

// ItemConfiguration is a menu entry linking to a page
type ItemConfiguration struct {
	Label string
	Link  string
}

// ShouldHideMenu tells whether the route with the given name is rendered without the menu
func ShouldHideMenu(routeName string) bool {
	for _, route := range RoutesWithoutMenu {
		if route == routeName {
			return true
		}
	}
	return false
}

// BuildMenu builds the menu of a user. Admins get the admin category before the widgets one.
func BuildMenu(isAdmin bool) Configuration {
	configuration := Configuration{
		Categories: make([]CategoryConfiguration, 0, 2),
	}

	if isAdmin {
		configuration.Categories = append(configuration.Categories, buildAdminMenu())
	}
	configuration.Categories = append(configuration.Categories, buildWidgetMenu())

	return configuration
}

func buildAdminMenu() CategoryConfiguration {
	return CategoryConfiguration{
		Label: "admin",
		Items: []ItemConfiguration{
			{Label: "users", Link: "/admin/users"},
			{Label: "repositories", Link: "/admin/repositories"},
			{Label: "dashboards", Link: "/admin/dashboards"},
			{Label: "configurations", Link: "/widgets/configurations"},
		},
	}
}

func buildWidgetMenu() CategoryConfiguration {
	return CategoryConfiguration{
		Label: "widgets",
		Items: []ItemConfiguration{
			{Label: "catalog", Link: "/widgets/catalog"},
		},
	}
}
