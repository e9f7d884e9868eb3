package exception

import "errors"

// ErrRecordNotFound custom database error for failure to find record
var ErrRecordNotFound = errors.New("record not found")

// ErrMalformedIcon error for a favicon payload that does not match the
// data:image/<ext>;base64,<body> grammar
var ErrMalformedIcon = errors.New("malformed icon data uri")
