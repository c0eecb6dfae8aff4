package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/lifei6671/i18ntree/cmd/i18nlint/checker"
)

func main() {
	dir := flag.StringP("dir", "d", "./i18n/locales", "directory of locale documents")
	format := flag.StringP("format", "f", "yaml", "document format: yaml or json")
	base := flag.StringP("base", "b", "en", "locale used as reference")
	reference := flag.StringP("reference", "r", "", "reference document (overrides --base)")
	key := flag.StringP("key", "k", "", "print the value of a key in every locale")
	failOnError := flag.Bool("fail", false, "exit with code 1 if any issue found")
	flag.Parse()

	res, err := checker.CheckLocales(*dir, checker.Options{
		Format:    *format,
		Base:      *base,
		Reference: *reference,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if *key != "" {
		printKey(res, *key)
		return
	}

	printResult(res)

	if *failOnError && res.HasIssues() {
		os.Exit(1)
	}
}

func printKey(res *checker.Result, key string) {
	values := res.Resolve(key)
	for _, lang := range res.Languages {
		fmt.Printf("%s: %s\n", lang, values[lang])
	}
}

func printResult(res *checker.Result) {
	fmt.Println("=== I18N CHECK RESULT ===")
	fmt.Println("Languages:", res.Languages)
	fmt.Println("Total keys:", len(res.AllKeys))

	for _, lang := range res.Languages {
		fmt.Printf("\n--- [%s] ---\n", lang)

		if arr := res.MissingKeys[lang]; len(arr) > 0 {
			fmt.Println("Missing keys:")
			for _, k := range arr {
				fmt.Println("  -", k)
			}
		} else {
			fmt.Println("Missing keys: None")
		}

		if arr := res.RedundantKeys[lang]; len(arr) > 0 {
			fmt.Println("Redundant keys:")
			for _, k := range arr {
				fmt.Println("  -", k)
			}
		} else {
			fmt.Println("Redundant keys: None")
		}

		if res.NeedsReorder[lang] {
			fmt.Println("Key order: differs from reference")
		} else {
			fmt.Println("Key order: OK")
		}
	}
}
