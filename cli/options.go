package cli

import "github.com/viant/authsession"

type Options struct {
	authsession.ClientOptions
	Verbose bool `short:"v" long:"verbose" description:"debug logging"`

	SignIn  SignInCommand  `command:"signin" description:"sign in and persist the session token"`
	SignUp  SignUpCommand  `command:"signup" description:"register a new account, does not sign in"`
	SignOut SignOutCommand `command:"signout" description:"clear the session and remove the persisted token"`
	WhoAmI  WhoAmICommand  `command:"whoami" description:"print session state"`
	Call    CallCommand    `command:"call" description:"send an authenticated request"`
}

type SignInCommand struct {
	Username string `short:"n" long:"username" description:"username" required:"true"`
	Password string `short:"p" long:"password" description:"password" required:"true"`
}

type SignUpCommand struct {
	Username string `short:"n" long:"username" description:"username" required:"true"`
	Password string `short:"p" long:"password" description:"password" required:"true"`
	Role     string `short:"r" long:"role" description:"requested role"`
}

type SignOutCommand struct{}

type WhoAmICommand struct{}

type CallCommand struct {
	Method string `short:"X" long:"method" description:"http method" default:"GET"`
	Data   string `short:"d" long:"data" description:"JSON request body"`
	Args   struct {
		Path string `positional-arg-name:"path" description:"path relative to base URL"`
	} `positional-args:"yes" required:"yes"`
}
