// Package sdk provides a typed Go client for the Dayplan MCP server.
//
// The client wraps mcp-go/client.CallTool with one method per MCP tool,
// connection management, and automatic retry via fortify.
//
// Usage:
//
//	transport, _ := client.NewStdioTransport("dayplan-mcp", "mcp")
//	c := sdk.NewClient(transport)
//	defer c.Close()
//
//	info, _ := c.Initialize(ctx)
//	projects, _ := c.ListProjects(ctx)
//	fmt.Println(len(projects))
package sdk
