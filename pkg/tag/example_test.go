package tag_test

import (
	"fmt"

	"github.com/walteh/tagsync/pkg/tag"
)

func ExampleInsert() {
	lines := tag.SplitLines(`prefix
// greet: say hello
old text
// greet:end
suffix`)

	updated, err := tag.Insert(lines, "greet", "new line1\nnew line2")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println(tag.JoinLines(updated))
	// Output:
	// prefix
	// // greet: say hello
	// new line1
	// new line2
	// // greet:end
	// suffix
}

func ExampleExtractContent() {
	lines := tag.SplitLines(`// config:
timeout = 30
retries = 3
// config:end`)

	content, err := tag.ExtractContent(lines, "config")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println(content)
	// Output:
	// timeout = 30
	// retries = 3
}
