package build

// ค่าพวกนี้จะถูกแทนที่ตอน build ด้วย -ldflags
var (
	Version = "local-dev"
	Time    = "n/a"
)
