package banner

import "fmt"

const banner = `
 ██████╗██╗  ██╗ █████╗ ████████╗ █████╗ ██╗  ██╗   ██╗███████╗███████╗██████╗
██╔════╝██║  ██║██╔══██╗╚══██╔══╝██╔══██╗██║  ╚██╗ ██╔╝╚══███╔╝██╔════╝██╔══██╗
██║     ███████║███████║   ██║   ███████║██║   ╚████╔╝   ███╔╝ █████╗  ██████╔╝
██║     ██╔══██║██╔══██║   ██║   ██╔══██║██║    ╚██╔╝   ███╔╝  ██╔══╝  ██╔══██╗
╚██████╗██║  ██║██║  ██║   ██║   ██║  ██║███████╗██║   ███████╗███████╗██║  ██║
 ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝╚══════╝╚═╝   ╚══════╝╚══════╝╚═╝  ╚═╝
`

// Print writes the startup banner with the effective runtime settings and a
// short endpoint reference.
func Print(addr, dbPath, version string, aiEnabled bool) {
	fmt.Print(banner)
	fmt.Println("== Config =====================================================")
	fmt.Printf("Listen:   %s\n", addr)
	fmt.Printf("DB Path:  %s\n", dbPath)
	if version != "" {
		fmt.Printf("Version:  %s\n", version)
	}
	fmt.Printf("AI:       %v\n", aiEnabled)
	fmt.Println("\n== Endpoints ==================================================")
	fmt.Println("POST   /v1/analyses       - Analyze a raw chat export (text body)")
	fmt.Println("POST   /v1/share          - Share-target intake (multipart field \"chat\")")
	fmt.Println("PUT    /v1/storage/{slot} - Persist chat|analysis (signed identity)")
	fmt.Println("GET    /v1/storage/{slot} - Fetch a persisted slot (signed identity)")
	fmt.Println("DELETE /v1/storage        - Clear persisted data (signed identity)")
	fmt.Println("\n== Examples ===================================================")
	fmt.Printf("curl -X POST 'http://localhost%s/v1/analyses' --data-binary @chat.txt\n", addr)
	fmt.Printf("curl -X POST 'http://localhost%s/v1/share' -F chat=@chat.txt\n", addr)
}
