package gin

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>sitebrief</title>
</head>
<body>
<h1>sitebrief</h1>
<form id="form">
	<input name="url" placeholder="example.com" required>
	<select name="language">
		<option value="en">English</option>
		<option value="de">Deutsch</option>
		<option value="pl">Polski</option>
	</select>
	<label><input type="checkbox" name="save" value="true"> save</label>
	<button type="submit">Summarize</button>
</form>
<pre id="out"></pre>
<script>
document.getElementById("form").addEventListener("submit", async (e) => {
	e.preventDefault();
	const res = await fetch("/summarize", {method: "POST", body: new URLSearchParams(new FormData(e.target))});
	const data = await res.json();
	document.getElementById("out").textContent = data.summary || data.error;
});
</script>
</body>
</html>
`
