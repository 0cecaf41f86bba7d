package ports

// TemplateRenderer renders named stubs with {{placeholder}} values.
type TemplateRenderer interface {
	Render(name string, vars map[string]string) (string, error)
}
