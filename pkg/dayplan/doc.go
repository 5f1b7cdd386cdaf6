// Package dayplan is a typed client for the Dayplan REST API.
//
// A Client is constructed once with a fixed configuration and is safe for
// concurrent use. Every method performs one authenticated JSON request,
// retries once on HTTP 503 or a transport-level failure, and unwraps the
// backend's response envelope to the payload the operation promises.
//
//	client, err := dayplan.New(os.Getenv("DAYPLAN_API_KEY"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	projects, err := client.ListProjects(ctx)
package dayplan
