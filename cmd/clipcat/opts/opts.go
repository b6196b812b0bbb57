package opts

import (
	"github.com/walteh/clipcat/pkg/clipboard"
	"github.com/walteh/clipcat/pkg/config"
	"github.com/walteh/clipcat/pkg/userlog"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config    *config.Config
	Clipboard clipboard.Clipboard
	UserLog   *userlog.Logger
}
