package config

// DefaultDenylistDomains returns domains that distort time accounting and
// should be dropped at load time: ad/tracking redirectors the browser only
// passes through, plus the browser's own internal pages. A visit to one of
// these says nothing about where the user actually spent time, yet it would
// truncate the credit of whatever page came before it.
func DefaultDenylistDomains() []string {
	return []string{
		// Ad & tracking redirectors
		"doubleclick.net",
		"googleadservices.com",
		"googlesyndication.com",
		"googletagmanager.com",
		"adnxs.com",
		"outbrain.com",
		"taboola.com",

		// Link-wrapping redirectors
		"safelinks.protection.outlook.com",
		"l.facebook.com",
		"lm.facebook.com",
		"t.co",
		"lnkd.in",
		"urldefense.com",
		"away.vk.com",

		// URL shorteners (instant redirects, zero dwell)
		"bit.ly",
		"goo.gl",
		"tinyurl.com",
		"ow.ly",
	}
}
