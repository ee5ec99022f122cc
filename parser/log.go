package parser

import "github.com/tliron/commonlog"

// logger is resolved on each use since the command registers its backend
// after this package is initialized.
func logger() commonlog.Logger {
	return commonlog.GetLogger("esparse.parser")
}
