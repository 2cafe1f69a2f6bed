package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

func main() {
	api := flag.String("api", "http://localhost:8080", "base URL of the phishscan service")
	flag.Parse()

	targets := flag.Args()
	if len(targets) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: urlcheck [-api addr] <url1> <url2> ...")
		os.Exit(1)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	for _, target := range targets {
		check(client, *api, target)
	}
}

func check(client *http.Client, api, target string) {
	endpoint := strings.TrimSuffix(api, "/") + "/predict?url=" + url.QueryEscape(target)

	fmt.Printf("Testing URL: %s\n", target)
	resp, err := client.Get(endpoint)
	if err != nil {
		fmt.Printf("Error connecting to the API: %v\n", err)
		fmt.Printf("Please make sure the service is running at %s\n", api)
		fmt.Println(strings.Repeat("-", 30))
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Printf("Error reading response: %v\n", err)
		fmt.Println(strings.Repeat("-", 30))
		return
	}

	fmt.Println("Response:")
	var pretty bytes.Buffer
	if json.Indent(&pretty, body, "", "  ") == nil {
		fmt.Println(pretty.String())
	} else {
		fmt.Println(string(body))
	}
	fmt.Println(strings.Repeat("-", 30))
}
