package constant

// ResolveLinkFn is the global function every Lua resolver script must define.
const ResolveLinkFn = "ResolveLink"

// ResolverTemplate is a Go text/template for scaffolding new Lua resolver files.
const ResolverTemplate = `{{ $divider := repeat "-" (plus (len .Domain) 12) }}{{ $divider }}
-- @domain  {{ .Domain }}
-- @author  {{ .Author }}
{{ $divider }}

local regexp = require("regexp")

--- Recover the direct media URL from an embedded player page.
--- @param embedded_url string the player URL found on the listings page
--- @param page string raw HTML of the player page
--- @return string|nil
function {{ .Fn }}(embedded_url, page)
	local matches = regexp.find_all_string_submatch([[(?i)file:.?"(.*?)"]], page)
	if matches ~= nil and #matches > 0 then
		return matches[1][2]
	end
	return nil
end
`
