package constant

// runtime.GOOS values that need their own handling when opening links or clearing the screen.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)
