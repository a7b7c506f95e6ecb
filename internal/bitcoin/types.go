package bitcoin

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ScriptDecoder interface {
		Disasm(script []byte) string
	}
)
