// Package splist is a thin client for the SharePoint list REST API.
//
// The client expands a pair of URL templates with the site URL, the active
// list title and an optional item ID, negotiates the OData metadata level
// via the Accept header, attaches the request digest, and decodes the
// verbosity-dependent response envelope. There is no retry, caching or
// request coordination: each call is one round trip controlled only by its
// context.
//
//	client := splist.New(nil, &splist.Config{
//		SiteURL:   "https://contoso.sharepoint.com/sites/dev",
//		ListTitle: "Documents",
//	})
//
//	items, err := client.FetchAll(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, raw := range items.Items {
//		// decode raw into your own field struct
//	}
//
// For authenticated sites, build a transport from a gosip client with the
// spauth package:
//
//	sp, _ := spauth.NewClient(authCfg)
//	client := splist.New(spauth.Transport(sp), cfg)
//
// State-mutating calls additionally need a request digest; RefreshDigest
// obtains one from the contextinfo endpoint and stores it in the config.
package splist
