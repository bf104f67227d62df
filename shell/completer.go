package shell

import (
	"io/ioutil"
	"strings"
)

// createFsEntryCompleter completes local dnt files and directories.
func createFsEntryCompleter() func([]string) []string {
	return func(args []string) []string {
		entries, err := ioutil.ReadDir(".")
		if err != nil {
			return nil
		}

		var options []string
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() {
				options = append(options, name+"/")
				continue
			}
			if strings.HasSuffix(strings.ToLower(name), ".dnt") {
				options = append(options, name)
			}
		}
		return options
	}
}
