package forgekit

// Operation identifies a forgekit subcommand. The set is closed: these are
// the only commands the external toolchain understands.
type Operation string

// Canonical command tokens, as accepted by the forgekit binary.
const (
	OpNew          Operation = "new"
	OpBuild        Operation = "build"
	OpPackage      Operation = "package"
	OpBuildPackage Operation = "build-package"
	OpRun          Operation = "run"
	OpAdd          Operation = "add"
	OpRemove       Operation = "remove"
	OpUpdate       Operation = "update"
	OpSearch       Operation = "search"
	OpTemplates    Operation = "templates"
)

// Operations lists every supported operation in declaration order.
func Operations() []Operation {
	return []Operation{
		OpNew, OpBuild, OpPackage, OpBuildPackage, OpRun,
		OpAdd, OpRemove, OpUpdate, OpSearch, OpTemplates,
	}
}

// NewOptions holds the optional flags recognized by the new operation.
type NewOptions struct {
	// Path is where the project is created (defaults to the project name).
	Path string
	// Template selects the scaffolding template.
	Template string
}

// AddOptions holds the optional flags recognized by the add operation.
type AddOptions struct {
	// Path is the project directory to operate on.
	Path string
	// Version pins the dependency to a specific version.
	Version string
}

// ProjectOptions holds the single optional flag shared by the remaining
// operations: the project directory to operate on.
type ProjectOptions struct {
	Path string
}

// The builders below are pure: the same inputs always produce the same
// argument vector. Flags are emitted in a fixed order (--path, --template,
// --version), each as two consecutive tokens, and only when the value is a
// non-empty string. Values pass through verbatim; quoting is the caller's
// problem.

// NewArgs returns the argument vector for `forgekit new`.
func NewArgs(name string, opts NewOptions) []string {
	return appendFlags([]string{string(OpNew), name}, opts.Path, opts.Template, "")
}

// BuildArgs returns the argument vector for `forgekit build`.
func BuildArgs(opts ProjectOptions) []string {
	return appendFlags([]string{string(OpBuild)}, opts.Path, "", "")
}

// PackageArgs returns the argument vector for `forgekit package`.
func PackageArgs(opts ProjectOptions) []string {
	return appendFlags([]string{string(OpPackage)}, opts.Path, "", "")
}

// BuildPackageArgs returns the argument vector for `forgekit build-package`.
func BuildPackageArgs(opts ProjectOptions) []string {
	return appendFlags([]string{string(OpBuildPackage)}, opts.Path, "", "")
}

// RunArgs returns the argument vector for `forgekit run`.
func RunArgs(opts ProjectOptions) []string {
	return appendFlags([]string{string(OpRun)}, opts.Path, "", "")
}

// AddArgs returns the argument vector for `forgekit add`.
func AddArgs(name string, opts AddOptions) []string {
	return appendFlags([]string{string(OpAdd), name}, opts.Path, "", opts.Version)
}

// RemoveArgs returns the argument vector for `forgekit remove`.
func RemoveArgs(name string, opts ProjectOptions) []string {
	return appendFlags([]string{string(OpRemove), name}, opts.Path, "", "")
}

// UpdateArgs returns the argument vector for `forgekit update`.
func UpdateArgs(opts ProjectOptions) []string {
	return appendFlags([]string{string(OpUpdate)}, opts.Path, "", "")
}

// SearchArgs returns the argument vector for `forgekit search`.
func SearchArgs(query string, opts ProjectOptions) []string {
	return appendFlags([]string{string(OpSearch), query}, opts.Path, "", "")
}

// TemplatesArgs returns the argument vector for `forgekit templates`.
func TemplatesArgs(opts ProjectOptions) []string {
	return appendFlags([]string{string(OpTemplates)}, opts.Path, "", "")
}

// appendFlags appends the recognized optional flags in their fixed order.
// An empty value means the option is absent.
func appendFlags(args []string, path, template, version string) []string {
	if path != "" {
		args = append(args, "--path", path)
	}
	if template != "" {
		args = append(args, "--template", template)
	}
	if version != "" {
		args = append(args, "--version", version)
	}
	return args
}
