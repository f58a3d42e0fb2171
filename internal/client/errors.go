package client

import "errors"

var (
	ErrNoServices      = errors.New("client services are not provided")
	ErrNoPrompter      = errors.New("password prompter is not provided")
	ErrNoCommand       = errors.New("no command given")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrMissingLogin    = errors.New("login is required: pass -login or set ADAPTER_LOGIN")
)
