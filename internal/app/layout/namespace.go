package layout

import "strings"

// RootNamespace is the PSR-4 namespace of the source directory, as declared
// in the manifest. It fails with a configuration error when it is not declared.
func (l *Layout) RootNamespace() (string, error) {
	return l.manifest.RootNamespace(l.SourceDirName())
}

func (l *Layout) FoundationNamespace() string {
	return strings.Trim(l.cfg.FoundationNamespace, nsSep)
}

func (l *Layout) DeviceNamespace(device string) (string, error) {
	root, err := l.RootNamespace()
	if err != nil {
		return "", err
	}
	if device == "" {
		return root, nil
	}
	return join(root, "Devices", device), nil
}

func (l *Layout) FeatureNamespace(device string) (string, error) {
	return l.underDevice(device, "Features")
}

func (l *Layout) FeatureTestNamespace(device string) (string, error) {
	if device == "" {
		return join("Tests", "Features"), nil
	}
	return l.underDevice(device, "Tests", "Features")
}

func (l *Layout) OperationNamespace(device string) (string, error) {
	return l.underDevice(device, "Operations")
}

func (l *Layout) OperationTestNamespace(device string) (string, error) {
	if device == "" {
		return join("Tests", "Operations"), nil
	}
	return l.underDevice(device, "Tests", "Operations")
}

func (l *Layout) ControllerNamespace(device string) (string, error) {
	return l.underDevice(device, "Http", "Controllers")
}

func (l *Layout) RequestsNamespace(device string) (string, error) {
	return l.underDevice(device, "Http", "Requests")
}

func (l *Layout) ProvidersNamespace(device string) (string, error) {
	return l.underDevice(device, "Providers")
}

func (l *Layout) DomainNamespace(domainName string) (string, error) {
	root, err := l.RootNamespace()
	if err != nil {
		return "", err
	}
	return join(root, "Domains", domainName), nil
}

func (l *Layout) JobsNamespace(domainName string) (string, error) {
	ns, err := l.DomainNamespace(domainName)
	if err != nil {
		return "", err
	}
	return join(ns, "Jobs"), nil
}

func (l *Layout) JobsTestNamespace(domainName string) (string, error) {
	ns, err := l.DomainNamespace(domainName)
	if err != nil {
		return "", err
	}
	return join(ns, "Tests", "Jobs"), nil
}

func (l *Layout) PolicyNamespace() (string, error) {
	root, err := l.RootNamespace()
	if err != nil {
		return "", err
	}
	return join(root, "Policies"), nil
}

func (l *Layout) ModelNamespace() (string, error) {
	root, err := l.RootNamespace()
	if err != nil {
		return "", err
	}
	return join(root, "Data"), nil
}

func (l *Layout) underDevice(device string, parts ...string) (string, error) {
	ns, err := l.DeviceNamespace(device)
	if err != nil {
		return "", err
	}
	return join(append([]string{ns}, parts...)...), nil
}

func join(parts ...string) string {
	return strings.Join(parts, nsSep)
}
