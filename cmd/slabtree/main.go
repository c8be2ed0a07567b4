// Command slabtree loads trees from outline or YAML files and renders or
// traverses them.
package main

func main() {
	execute()
}
