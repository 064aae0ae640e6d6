// Package config loads greetings configuration.
//
// Values are layered, later layers winning: the embedded defaults, the user
// config file, a .env file in the working directory, and finally the process
// environment. The loaded Config is passed explicitly to the components that
// need it; nothing below the command layer reads the environment.
package config
