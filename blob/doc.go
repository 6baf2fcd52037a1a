// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package blob stores uploaded photo binaries and resolves them to public
URLs.

The Store interface keeps handlers independent of the backing host:

	url, err := blobs.Save(data, header.Filename, mimeType)
	err = blobs.Delete(url)

Local is the shipping implementation: files land in the configured
upload directory under a UUID name (original extension preserved) and
are served by the router at /uploads/. Delete resolves the file from
the URL's last path segment and treats an already-missing file as
success - the photo record in the store is the source of truth, not
the file.
*/
package blob
