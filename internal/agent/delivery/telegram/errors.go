package telegram

import "errors"

var errNoChat = errors.New("update message has no chat")
