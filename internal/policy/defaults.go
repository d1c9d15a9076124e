package policy

// BuiltinExcludes is the canonical list of patterns excluded on every
// run, before any user-supplied patterns. It covers VCS metadata,
// dependency and build output directories, tool caches, and generated
// files that add noise without context. Each pattern is matched
// against the full relative path and against the entry name, so a
// bare directory name applies at any depth.
//
// Users can extend this list with --exclude but cannot override it.
var BuiltinExcludes = []string{
	// VCS metadata
	".git",
	".svn",
	".hg",

	// Dependency directories
	"node_modules",
	"vendor",
	"bower_components",

	// Build output and caches
	"dist",
	"build",
	"target",
	"out",
	"coverage",
	"__pycache__",
	".pytest_cache",
	".mypy_cache",
	".next",
	".nuxt",
	".cache",
	".parcel-cache",
	".turbo",
	".venv",
	"venv",

	// Editor and IDE state
	".idea",
	".vscode",
	".vs",

	// Generated lockfiles
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"composer.lock",

	// Tool logs and minified assets
	"npm-debug.log*",
	"yarn-debug.log*",
	"yarn-error.log*",
	"*.min.js",
	"*.min.css",

	// OS droppings
	".DS_Store",
	"Thumbs.db",
}
