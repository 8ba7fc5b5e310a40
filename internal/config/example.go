package config

// ExampleTOML is a commented config file with every key at its default.
const ExampleTOML = `# tasklist configuration
title   = "Simple ToDo App"
backend = "memory"   # memory | sqlite (both discard tasks on exit)
theme   = "auto"     # auto | light | dark

[log]
file  = ""           # empty: no log output
level = "info"       # debug | info | warn | error

[input]
placeholder = "Enter task"
char_limit  = 200

[edit]
allow_empty = true   # let a saved edit blank out a task
`
