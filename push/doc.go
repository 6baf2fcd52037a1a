// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package push delivers reminder notifications to devices.

Gateway posts a JSON message to the configured push endpoint:

	{"to": "<delivery token>", "title": "...", "body": "..."}

Any transport failure or non-2xx gateway status is returned as an error;
the caller (the reminder scheduler) leaves the reminder un-notified so
the next scan retries it. Delivery errors never reach an HTTP response.
*/
package push
