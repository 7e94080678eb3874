package emit

const headerTemplate = `/* Autogenerated file -- do not edit
 * generated by {{ .Generator }}
{{- if .Copyright }}
 *
{{- range .Copyright }}
 * {{ . }}
{{- end }}
{{- end }}
 */

#ifndef {{ .Guard }}
#define {{ .Guard }}

#include <vulkan/vulkan.h>
#include <vulkan/vk_android_native_buffer.h>

#ifdef __cplusplus
extern "C" {
#endif

{{ range .Extensions -}}
#define _{{ .Name }}_number ({{ .Number }})
{{ end }}
{{- range .Enums }}
const char * vk_{{ .Func }}_to_str({{ .Name }} input);
{{- end }}

#ifdef __cplusplus
} /* extern "C" */
#endif

#endif
`

const sourceTemplate = `/* Autogenerated file -- do not edit
 * generated by {{ .Generator }}
{{- if .Copyright }}
 *
{{- range .Copyright }}
 * {{ . }}
{{- end }}
{{- end }}
 */

#include <vulkan/vulkan.h>
#include <vulkan/vk_android_native_buffer.h>
#include "util/macros.h"
#include "{{ .HeaderFile }}"
{{ range .Enums }}
const char *
vk_{{ .Func }}_to_str({{ .Name }} input)
{
    switch(input) {
{{- range .Cases }}
{{- if .Foreign }}

#pragma GCC diagnostic push
#pragma GCC diagnostic ignored "-Wswitch"
{{- end }}
    case {{ .Value }}:
        return "{{ .Name }}";
{{- if .Foreign }}
#pragma GCC diagnostic pop
{{- end }}
{{- end }}
    default:
        unreachable("Undefined enum value.");
    }
}
{{ end -}}
`
